// Package edgelist loads a core.Graph from a delimited text edge list.
//
// The delimiter is sniffed from the file body: lines matching a
// tab-separated pair pattern are counted against comma-separated ones,
// and tabs win when they are the strict majority. Lines starting with
// '#' and blank lines are skipped. Each remaining line must carry at
// least two fields; the first two are the edge endpoints and any extra
// fields are ignored. Self-loops are skipped (the graph model is
// simple), and duplicate edges collapse.
package edgelist
