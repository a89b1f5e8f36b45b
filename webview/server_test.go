package webview_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
	"github.com/katalvlaran/bspgen/webview"
)

// halves splits a (seed+10)×20 root once down the middle, so the snapshot
// width tells which seed produced it.
func halves(seed int64) (*bsp.Tree, error) {
	if seed < 0 {
		return nil, errors.New("negative seed")
	}
	tr := bsp.New(1, bsp.WithSplitRatio(0.5, 0.5))
	if err := tr.SetRoot(geom.R(0, 0, int(seed)+10, 20)); err != nil {
		return nil, err
	}
	if err := tr.Split(true, 0); err != nil {
		return nil, err
	}
	tr.BuildRooms(geom.Uniform(1))
	if _, err := tr.GeneratePaths(); err != nil {
		return nil, err
	}
	return tr, nil
}

func newTestServer(t *testing.T) (*webview.Server, *httptest.Server) {
	t.Helper()
	s := webview.NewServer(halves, 1, nil)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream" + query
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) webview.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var snap webview.Snapshot
	require.NoError(t, wsjson.Read(ctx, conn, &snap))
	return snap
}

func send(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(msg)))
}

func TestPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/?seed=4")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	assert.Contains(t, page, "<title>bspgen</title>")
	assert.Contains(t, page, `<script id="snapshot" type="application/json">{"width":15,"height":21,"seed":4,`)
	assert.Contains(t, page, `<canvas id="map" width="90" height="126">`)
	assert.True(t, strings.HasSuffix(page, "</body></html>"))
}

func TestPage_Errors(t *testing.T) {
	_, ts := newTestServer(t)
	for path, code := range map[string]int{
		"/?seed=abc": http.StatusBadRequest,
		"/?seed=-5":  http.StatusInternalServerError,
		"/missing":   http.StatusNotFound,
	} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, code, resp.StatusCode, path)
	}
}

func TestStream_SnapshotAndRegenerate(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts, "")

	snap := readSnapshot(t, conn)
	assert.Equal(t, int64(1), snap.Seed)
	assert.Equal(t, 12, snap.Width)
	assert.Equal(t, 21, snap.Height)
	assert.Len(t, snap.Nodes, 3)
	assert.Len(t, snap.Rooms, 2)
	assert.Len(t, snap.Paths, 1)

	send(t, conn, `{"type":"regenerate"}`)
	assert.Equal(t, int64(2), readSnapshot(t, conn).Seed)

	send(t, conn, `not json`)
	send(t, conn, `{"type":"dance"}`)
	send(t, conn, `{"type":"regenerate","seed":40}`)
	snap = readSnapshot(t, conn)
	assert.Equal(t, int64(40), snap.Seed)
	assert.Equal(t, 51, snap.Width)
}

func TestStream_SeedQuery(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts, "?seed=7")
	assert.Equal(t, int64(7), readSnapshot(t, conn).Seed)
}

func TestStream_GenerationFailureCloses(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts, "")
	readSnapshot(t, conn)

	send(t, conn, `{"type":"regenerate","seed":-1}`)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Equal(t, websocket.StatusInternalError, websocket.CloseStatus(err))
}

func TestStream_Share(t *testing.T) {
	s, ts := newTestServer(t)
	a := dial(t, ts, "?seed=3")
	b := dial(t, ts, "?seed=9")
	readSnapshot(t, a)
	readSnapshot(t, b)
	require.Eventually(t, func() bool { return s.Hub().Len() == 2 }, 5*time.Second, 10*time.Millisecond)

	send(t, a, `{"type":"share"}`)
	assert.Equal(t, int64(3), readSnapshot(t, b).Seed, "b sees a's layout")
	assert.Equal(t, int64(3), readSnapshot(t, a).Seed, "the sender receives it too")

	require.NoError(t, a.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return s.Hub().Len() == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestNewSnapshot_EmptyTree(t *testing.T) {
	snap := webview.NewSnapshot(bsp.New(0), 3)
	assert.Equal(t, 0, snap.Width)
	assert.NotNil(t, snap.Rooms)
	assert.NotNil(t, snap.Paths)
	assert.Empty(t, snap.Nodes)
}
