// Package webview serves partition trees to a browser.
//
// GET / renders an HTML page with the tree for ?seed= (or the server's
// default seed) embedded as JSON and drawn on a canvas. /stream upgrades to
// a websocket that sends a Snapshot on connect and answers client requests:
//
//	{"type":"regenerate"}            next seed
//	{"type":"regenerate","seed":42}  explicit seed
//	{"type":"share"}                 broadcast this client's snapshot to all
//
// Each connection owns its own tree; the Hub only tracks connections for
// broadcasts.
package webview
