// Package main is the entry point for the structuml CLI.
package main

func main() {
	Execute()
}
