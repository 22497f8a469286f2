package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/eotc/internal/config"
)

func main() {
	if err := config.Parse(os.Args[1:]); nil != err {
		config.Usage(err)
	}

	var p Program
	if err := p.Init(); nil != err {
		log.Fatalln(err)
	}
	defer p.Deinit()

	if err := p.Run(); nil != err {
		p.Deinit()
		log.Fatalln(err)
	}
}
