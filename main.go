package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/pong13h/session"
)

func main() {
	s, err := session.NewSession(os.Args[1:])
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(2)
	}

	var endGui chan bool
	var endProgram chan bool
	var resultGui chan error
	var resultProgram chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the program and vice versa
	endGui = make(chan bool, 1)
	endProgram = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and program will end
	resultGui = make(chan error, 1)
	resultProgram = make(chan error, 1)

	go func() {
		resultGui <- s.LaunchHost(endGui)
		endProgram <- true
	}()

	go func() {
		resultProgram <- s.Launch(endProgram)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultProgram; err != nil {
		fmt.Printf("*** %s\n", err)
	}

	os.Exit(s.ExitStatus())
}
