package main

import "movie-reviews/cmd"

func main() {
	cmd.Execute()
}
