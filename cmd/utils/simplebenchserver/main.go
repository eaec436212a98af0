// Command simplebenchserver serves a fixed-size response as fast as
// fasthttp can write it, with an optional artificial delay. Handy as
// a local target for cannonade runs.
package main

import (
	"log"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/valyala/fasthttp"
)

var (
	serverPort = kingpin.Flag("port", "port to use for benchmarks").
			Short('p').
			Default("8080").
			String()
	responseSize = kingpin.Flag("size", "size of response in kilobytes").
			Short('s').
			Default("1").
			Uint()
	responseDelay = kingpin.Flag("delay", "artificial delay before each response").
			Short('d').
			Default("0s").
			Duration()
)

func main() {
	kingpin.Parse()
	response := strings.Repeat("a", int(*responseSize)*1024)
	addr := "localhost:" + *serverPort
	log.Println("Starting HTTP server on:", addr)
	err := fasthttp.ListenAndServe(addr, func(c *fasthttp.RequestCtx) {
		if *responseDelay > 0 {
			time.Sleep(*responseDelay)
		}
		_, werr := c.WriteString(response)
		if werr != nil {
			log.Println(werr)
		}
	})
	if err != nil {
		log.Println(err)
	}
}
