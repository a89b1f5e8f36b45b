package webview

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page renders the viewer page for snap.
func Page(title string, snap Snapshot) templ.Component {
	return templ.Join(
		pageHead(title, snap),
		templ.JSONScript("snapshot", snap),
		templ.Raw(pageScript),
		templ.Raw("</body></html>"),
	)
}

func pageHead(title string, snap Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title>`+
			`<style>body{background:#111;color:#ddd;font-family:monospace}canvas{image-rendering:pixelated}</style>`+
			`</head><body><h1>%s</h1>`+
			`<p><button id="regenerate">regenerate</button> <button id="share">share</button> `+
			`seed <span id="seed">%d</span></p>`+
			`<canvas id="map" width="%d" height="%d"></canvas>`,
			templ.EscapeString(title), templ.EscapeString(title), snap.Seed, snap.Width*cellPixels, snap.Height*cellPixels)
		return err
	})
}

// cellPixels is the canvas size of one grid cell.
const cellPixels = 6

const pageScript = `<script>
(function () {
  const px = 6;
  const palette = ["#f0f", "#f00", "#00f", "#fff", "#0f0", "#ff0"];
  const canvas = document.getElementById("map");
  const ctx = canvas.getContext("2d");

  function draw(s) {
    canvas.width = s.width * px;
    canvas.height = s.height * px;
    document.getElementById("seed").textContent = s.seed;
    ctx.fillStyle = "#000";
    ctx.fillRect(0, 0, canvas.width, canvas.height);
    s.nodes.forEach(function (n, i) {
      const b = n.bounds;
      ctx.strokeStyle = palette[i % palette.length];
      ctx.strokeRect(b.X1 * px, b.Y1 * px, (b.X2 - b.X1 + 1) * px, (b.Y2 - b.Y1 + 1) * px);
    });
    ctx.fillStyle = "#888";
    s.paths.forEach(function (p) {
      p.forEach(function (c) { ctx.fillRect(c.X * px, c.Y * px, px, px); });
    });
    s.rooms.forEach(function (r, i) {
      ctx.fillStyle = palette[i % palette.length];
      ctx.fillRect(r.X1 * px, r.Y1 * px, (r.X2 - r.X1 + 1) * px, (r.Y2 - r.Y1 + 1) * px);
    });
  }

  draw(JSON.parse(document.getElementById("snapshot").textContent));

  const proto = location.protocol === "https:" ? "wss://" : "ws://";
  const ws = new WebSocket(proto + location.host + "/stream" + location.search);
  ws.onmessage = function (ev) { draw(JSON.parse(ev.data)); };
  document.getElementById("regenerate").onclick = function () {
    ws.send(JSON.stringify({type: "regenerate"}));
  };
  document.getElementById("share").onclick = function () {
    ws.send(JSON.stringify({type: "share"}));
  };
})();
</script>`
