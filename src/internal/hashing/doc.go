// Package hashing fingerprints blocklist data as it streams.
//
// NewMD5ReaderProxy wraps the body of a downloaded source and
// NewMD5WriterProxy wraps a generated blocklist file. Both count bytes and
// hash them on the fly, so neither the download nor the output has to be
// buffered twice:
//
//	proxy := hashing.NewMD5WriterProxy(file)
//	if err := lists.RenderDomains(proxy, domains); err != nil {
//	    return err
//	}
//	checksum, _ := proxy.GetChecksum()
//
// The checksums end up in source reports, log lines and the ETag of the
// serve command's responses.
package hashing
