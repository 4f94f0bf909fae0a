package main

import (
	"encoding/gob"
	"fmt"

	"github.com/rkusa/ctx"
	"github.com/rkusa/ctx/request"
)

type stdoutLogger struct{}

func (stdoutLogger) Trace(args ...interface{}) {
	fmt.Println(append([]interface{}{"TRACE"}, args...)...)
}

func (stdoutLogger) Warning(args ...interface{}) {
	fmt.Println(append([]interface{}{"WARN "}, args...)...)
}

func (stdoutLogger) Error(args ...interface{}) {
	fmt.Println(append([]interface{}{"ERRR "}, args...)...)
}

func main() {
	// bag values travel as interfaces and must be known to gob
	gob.Register("")

	// the edge service creates the request context...
	c := request.New(ctx.Background(), request.WithLogger(stdoutLogger{}))
	c.Store("user", "alice")
	c.Trace("api.request.start", "received request")

	// ...sends it over the wire...
	data, err := request.MarshalText(c)
	if err != nil {
		panic(err)
	}

	// ...and the service downstream rebuilds it
	remote, err := request.UnmarshalText(ctx.Background(), data, request.WithLogger(stdoutLogger{}))
	if err != nil {
		panic(err)
	}
	remote.Trace("worker.request.handle", "user:", remote.Load("user"))
}
