package main

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsOnSignal(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)
	stop <- os.Interrupt

	require.NoError(t, serve(server, stop))
}

func TestServe_ListenError(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:99999", Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)
	t.Cleanup(func() { stop <- os.Interrupt })

	assert.Error(t, serve(server, stop))
}
