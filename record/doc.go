// Package record defines the structured record shared by every confkit
// source and the deep merge that combines them.
//
// A Record is a string-keyed map whose values are scalars, nested records or
// arrays. Only nested records are merged recursively; arrays and scalars are
// always replaced by the later record.
//
// # Usage
//
//	merged := record.Merge(
//	    record.Record{"db": record.Record{"host": "localhost", "port": 5432}},
//	    record.Record{"db": record.Record{"port": 6432}},
//	)
//	// merged = {"db": {"host": "localhost", "port": 6432}}
package record
