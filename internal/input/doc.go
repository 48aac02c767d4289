// Package input parses the link list file into platform groups.
//
// The format is line oriented:
//
//	Youtube : 2
//	> https://youtube.com/watch?v=...
//	> ```https://youtube.com/watch?v=...```
//	Medium : 1
//	> unavailable
//
// A header line contains a colon and does not start with '>'. Everything
// before the first colon is the platform name. The count after the colon is
// informational and is not validated. Link lines start with '>' and belong to
// the most recent header. Anything else is ignored.
package input
