package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	srv "github.com/IBM/SVCheck/tools/svrest"
)

func main() {
	stop, err := srv.Start("127.0.0.1:7443")
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test rest server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintln(os.Stderr, "test rest server listening on 127.0.0.1:7443")
	defer stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
