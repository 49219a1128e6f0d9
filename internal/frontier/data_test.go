package frontier_test

import (
	"net/url"
	"testing"

	"github.com/markopoloparadox/web-crawler/internal/frontier"
)

func TestTask_AccessorsRoundTrip(t *testing.T) {
	u := url.URL{Scheme: "https", Host: "w.t", Path: "/a"}
	task := frontier.NewTask(u, 3)

	if task.URL() != u {
		t.Errorf("URL() = %v, want %v", task.URL(), u)
	}
	if task.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", task.Depth())
	}
}
