package main

import (
	"fmt"
	"time"

	"github.com/rkusa/ctx"
)

func main() {
	c, cancel := ctx.WithTimeout(ctx.Background(), 50*time.Millisecond)
	defer cancel()

	select {
	case <-work():
		fmt.Println("done in time")
	case <-c.Done():
		fmt.Println("aborted:", c.Err())
	}
}

func work() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		time.Sleep(time.Second)
		close(done)
	}()
	return done
}
