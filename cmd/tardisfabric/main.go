// Command tardisfabric assembles a tardis coherence fabric and reports,
// records or serves the result.
package main

func main() {
	Execute()
}
