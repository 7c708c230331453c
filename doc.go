// Package webhdfs implements the request core of the WebHDFS REST protocol:
// URL composition against a NameNode/DataNode HTTP endpoint, verb execution,
// the two-phase redirect protocol for data-carrying operations, and JSON
// response decoding into a generic tree.
//
// The package moves bytes and headers across the wire; it does not interpret
// WebHDFS operation semantics. Callers name the operation through query
// arguments and interpret the decoded response themselves.
//
// # Basic Usage
//
//	cfg := webhdfs.Config{Host: "namenode", Port: 50070, User: "alice"}
//
//	req := webhdfs.Open(cfg, "/user/alice/data.txt")
//	defer req.Close()
//
//	req.SetArgs("op=GETFILESTATUS&")
//	if err := req.Exec(ctx, webhdfs.Get); err != nil {
//	    return err
//	}
//	node := req.Decode()
//
// # Uploads
//
// Write operations carry their body through a pull-based UploadSource and
// follow the WebHDFS two-phase convention: the first round-trip asks the
// NameNode for the DataNode location, the second delivers the payload there
// with chunked transfer encoding.
//
//	req := webhdfs.Open(cfg, "/user/alice/data.txt")
//	defer req.Close()
//
//	req.SetArgs("op=CREATE&overwrite=true&")
//	req.SetUpload(webhdfs.ReaderSource(file))
//	err := req.Exec(ctx, webhdfs.Put)
//
// A Request is single-shot and not safe for concurrent use; callers needing
// concurrent operations open one Request per operation. The Config is
// read-only after construction and safe to share.
package webhdfs
