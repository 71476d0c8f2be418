package main

import "github.com/envsanity/envcheck/cmd/envcheck"

func main() {
	envcheck.Execute()
}
