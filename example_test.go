package netreq_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/adamwoolhether/netreq"
	"github.com/adamwoolhether/netreq/client"
	"github.com/adamwoolhether/netreq/request"
)

type greeting struct {
	Msg string `json:"msg" validate:"required"`
}

func ExampleNewClient() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"msg":"hello"}`)
	}))
	defer ts.Close()

	c, err := netreq.NewClient(client.WithTimeout(5 * time.Second))
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	host := strings.TrimPrefix(ts.URL, "http://")

	resp, err := netreq.Get[greeting](context.Background(), c, host, "/", request.WithScheme("http"))
	if err != nil {
		fmt.Println("fetch error:", err)
		return
	}

	fmt.Println(resp.Msg)
	// Output: hello
}
