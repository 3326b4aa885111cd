// Package datasource lets one data source drive both the list and the grid
// container.
//
// A concrete source implements Source (section count, item count, cell
// retrieval) and any of the optional hook interfaces it cares about. New
// wraps it in an Adapter whose List and Grid facades implement the two
// container protocols by translating every call onto the Source.
//
//	a := datasource.New(mySource)
//	list := listview.New(a.List(), a.List())
//	grid := gridview.New(a.Grid(), a.Grid())
//
// An auxiliary scroll delegate set with SetScrollDelegate receives the
// scroll notifications the hosts publish through either facade. It is held
// weakly: once its owner drops it, forwarding behaves as if it was never
// set.
package datasource
