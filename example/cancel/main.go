package main

import (
	"fmt"
	"time"

	"github.com/rkusa/ctx"
)

func main() {
	c, cancel := ctx.WithCancel(ctx.Background())

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	fmt.Println("working...")
	<-c.Done()
	fmt.Println("released:", c.Err())
}
