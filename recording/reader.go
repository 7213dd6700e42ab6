package recording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// QueryParams narrows down the rows a query returns.
type QueryParams struct {
	// Where is a condition with ? placeholders, e.g. "Node = ?".
	Where string
	Args  []any

	// OrderBy lists the sort columns, e.g. "ID".
	OrderBy string

	// Limit caps the number of rows. Zero returns every row.
	Limit int
}

// DataReader reads the tables a DataRecorder wrote back into entries.
type DataReader interface {
	// MapTable tells the reader which entry type a table holds. Tables must be
	// mapped before they are queried.
	MapTable(tableName string, sampleEntry any)

	// ListTables returns the mapped tables, sorted.
	ListTables() []string

	// Query returns pointers to entries of the mapped type.
	Query(ctx context.Context, tableName string, params QueryParams) (
		[]any,
		error,
	)

	Close() error
}

type sqliteReader struct {
	db      *sql.DB
	entries map[string]reflect.Type
}

// NewReader opens a recorded database.
func NewReader(dbFilename string) DataReader {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		panic(err)
	}

	return NewReaderWithDB(db)
}

// NewReaderWithDB reads from an open database.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:      db,
		entries: make(map[string]reflect.Type),
	}
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.entries[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) ListTables() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *sqliteReader) Query(
	ctx context.Context,
	tableName string,
	params QueryParams,
) ([]any, error) {
	entryType, mapped := r.entries[tableName]
	if !mapped {
		return nil, fmt.Errorf("table %s is not mapped", tableName)
	}

	rows, err := r.db.QueryContext(ctx,
		selectStatement(tableName, params), params.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var entries []any

	for rows.Next() {
		entry := reflect.New(entryType)
		if err := rows.Scan(scanTargets(entry.Elem(), columns)...); err != nil {
			return nil, err
		}

		entries = append(entries, entry.Interface())
	}

	return entries, rows.Err()
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}

func selectStatement(tableName string, params QueryParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT * FROM %s", tableName)

	if params.Where != "" {
		fmt.Fprintf(&b, " WHERE %s", params.Where)
	}

	if params.OrderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", params.OrderBy)
	}

	if params.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", params.Limit)
	}

	return b.String()
}

// scanTargets points every column at the entry field of the same name.
// Columns without a field are read and dropped.
func scanTargets(entry reflect.Value, columns []string) []any {
	targets := make([]any, len(columns))

	for i, column := range columns {
		field := entry.FieldByName(column)
		if !field.IsValid() {
			targets[i] = new(any)
			continue
		}

		targets[i] = field.Addr().Interface()
	}

	return targets
}

// TopologyReader reads back the tables a TopologyRecorder wrote.
type TopologyReader struct {
	reader DataReader
}

// NewTopologyReader maps the topology tables on the reader.
func NewTopologyReader(reader DataReader) *TopologyReader {
	reader.MapTable(NodeTable, NodeEntry{})
	reader.MapTable(ChannelTable, ChannelEntry{})
	reader.MapTable(RouterTable, RouterEntry{})
	reader.MapTable(LinkTable, LinkEntry{})

	return &TopologyReader{reader: reader}
}

// Nodes returns the nodes ordered by node ID.
func (r *TopologyReader) Nodes(ctx context.Context) ([]NodeEntry, error) {
	return queryAs[NodeEntry](ctx, r.reader, NodeTable,
		QueryParams{OrderBy: "ID"})
}

// ChannelsOf returns the channels of a node in the order they were wired.
func (r *TopologyReader) ChannelsOf(
	ctx context.Context,
	node string,
) ([]ChannelEntry, error) {
	return queryAs[ChannelEntry](ctx, r.reader, ChannelTable,
		QueryParams{Where: "Node = ?", Args: []any{node}, OrderBy: "rowid"})
}

// ChannelsInVirtualNetwork returns every channel carried by a virtual
// network.
func (r *TopologyReader) ChannelsInVirtualNetwork(
	ctx context.Context,
	vnet int,
) ([]ChannelEntry, error) {
	return queryAs[ChannelEntry](ctx, r.reader, ChannelTable,
		QueryParams{Where: "VirtualNetwork = ?", Args: []any{vnet}})
}

// Routers returns the routers ordered by router ID.
func (r *TopologyReader) Routers(ctx context.Context) ([]RouterEntry, error) {
	return queryAs[RouterEntry](ctx, r.reader, RouterTable,
		QueryParams{OrderBy: "ID"})
}

// InternalLinks returns the links between routers.
func (r *TopologyReader) InternalLinks(
	ctx context.Context,
) ([]LinkEntry, error) {
	return queryAs[LinkEntry](ctx, r.reader, LinkTable,
		QueryParams{Where: "Node < 0"})
}

func queryAs[T any](
	ctx context.Context,
	reader DataReader,
	table string,
	params QueryParams,
) ([]T, error) {
	rows, err := reader.Query(ctx, table, params)
	if err != nil {
		return nil, err
	}

	entries := make([]T, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *row.(*T))
	}

	return entries, nil
}
