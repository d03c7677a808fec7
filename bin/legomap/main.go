package main

import (
	"log"

	"github.com/leifgehrmann/lego-art-map-blog-post/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
