package spectate

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(t *testing.T) *cubesnake.Model {
	t.Helper()
	m, err := cubesnake.NewWithSeed(cubesnake.DefaultConfig(), 3)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/frames"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func TestNewFrame(t *testing.T) {
	m := newTestModel(t)
	f := NewFrame(7, m)

	if f.Tick != 7 || f.Size != 6 || f.Head != m.Head() {
		t.Errorf("frame header = %+v", f)
	}
	if len(f.Tiles) != 4 {
		t.Fatalf("got %d tiles, expected snake of 3 plus one object", len(f.Tiles))
	}
	for _, tile := range f.Tiles {
		switch tile.T {
		case "head", "pre_head", "tail":
			if tile.F != "down" || tile.O != "up" {
				t.Errorf("segment %+v, expected to run from down to up", tile)
			}
		case "object":
			if tile.F != "" || tile.O != "" {
				t.Errorf("object carries directions: %+v", tile)
			}
		default:
			t.Errorf("unexpected tile %+v", tile)
		}
	}
}

func TestFrameJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(NewFrame(1, newTestModel(t)))
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"tick"`, `"size"`, `"score"`, `"gameOver"`, `"progress"`, `"head"`, `"tiles"`, `"i"`, `"t"`} {
		if !strings.Contains(string(b), field) {
			t.Errorf("encoded frame missing %s: %s", field, b)
		}
	}
}

func TestViewerReceivesLatestFrameOnConnect(t *testing.T) {
	hub := NewHub(testLogger())
	srv := httptest.NewServer(NewServer("", hub, testLogger()).Handler())
	defer srv.Close()

	m := newTestModel(t)
	hub.Publish(NewFrame(42, m))

	conn := dial(t, srv)
	if f := readFrame(t, conn); f.Tick != 42 {
		t.Errorf("first frame tick = %d, expected 42", f.Tick)
	}
}

func TestViewerReceivesPublishedFrames(t *testing.T) {
	hub := NewHub(testLogger())
	srv := httptest.NewServer(NewServer("", hub, testLogger()).Handler())
	defer srv.Close()

	conn := dial(t, srv)
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	g := cubesnake.NewGameWithSettings(cubesnake.ModeClassic, config.DefaultCubeSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.Step(core.NewInputFrame())
	hub.Observe(g)

	f := readFrame(t, conn)
	if f.Tick != 1 || f.Head != g.Model().Head() || f.Score != 0 {
		t.Errorf("frame = %+v", f)
	}
}

func TestViewerDisconnectUnsubscribes(t *testing.T) {
	hub := NewHub(testLogger())
	srv := httptest.NewServer(NewServer("", hub, testLogger()).Handler())
	defer srv.Close()

	conn := dial(t, srv)
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer still subscribed after closing")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSlowViewerDropsFrames(t *testing.T) {
	hub := NewHub(testLogger())
	ch := hub.subscribe("slow")
	m := newTestModel(t)

	for i := range clientBuffer + 5 {
		hub.Publish(NewFrame(uint64(i), m))
	}

	if len(ch) != clientBuffer {
		t.Errorf("queued %d frames, expected %d", len(ch), clientBuffer)
	}
	if hub.Dropped() != 5 {
		t.Errorf("Dropped() = %d, expected 5", hub.Dropped())
	}
}

func TestObserveIgnoresOtherGames(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Observe(nil)
	if hub.last != nil {
		t.Error("published a frame for a non Cube Snake game")
	}
}
