package main

import (
	"fmt"
	"os"
	system "os"
)

type server struct{}

func (server) main() {
	os.Exit(1)
}

func exit(code int) {
	os.Exit(code)
}

func main() {
	defer fmt.Println("deferred")

	if len(os.Args) > 2 {
		os.Exit(2) // want "os.Exit called in main function of main package"
	}

	func() {
		system.Exit(3) // want "os.Exit called in main function of main package"
	}()

	server{}.main()
	exit(0)
}
