// Command memctl exercises the memcore primitives from the command line.
package main

func main() {
	execute()
}
