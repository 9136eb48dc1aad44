// Package bridge connects to a plot server over socket.io and answers
// relayout requests with resolved axis configurations.
//
// A `relayout` event carries
//
//	{"request_id": "...", "axis": "xaxis2", "layout": {...}, "data": [...]}
//
// where `layout` holds the axis attributes as edited and the optional
// `data`, `font`, `plot_bgcolor`, `calendar` and `editable` members give the
// surrounding document. The bridge answers with `axis:resolved`
//
//	{"request_id": "...", "axis": "xaxis2", "resolved": {...}, "data": [...], "warnings": [...]}
//
// or with `axis:error` when the request cannot be read. Requests without an
// id are assigned a random UUID.
package bridge
