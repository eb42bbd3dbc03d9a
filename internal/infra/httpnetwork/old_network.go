package httpnetwork

import (
	"io"
	"net/http"
	"strings"

	"github.com/aalvaropc/solidbots/internal/domain"
)

// oldNetworkEndpoint is fixed at build time; tests swap it for an httptest server.
var oldNetworkEndpoint = domain.DefaultEndpoint

// OldNetwork knows exactly one way to talk to HQ. Supporting another mechanism,
// or formatting the message differently, means editing this type and every
// caller that holds one.
type OldNetwork struct{}

func (OldNetwork) Broadcast(message string) error {
	client := &http.Client{}
	resp, err := client.Post(oldNetworkEndpoint, "text/plain; charset=utf-8", strings.NewReader(message))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
