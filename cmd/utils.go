package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

func waitSIGINT() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
