// Package dom is a headless, in-memory host document.
//
// It provides the host API the soda renderer drives: element and text node
// creation (optionally namespaced), attributes, individual style properties,
// event listeners with a capture flag, and the standard tree mutations.
// Every mutation is reported synchronously to observers registered with
// Document.Observe, which lets tests assert exactly which host operations an
// update performed.
//
//	doc := dom.NewDocument()
//	rec := dom.NewRecorder(doc)
//	div := doc.CreateElement("div")
//	_ = doc.Body().AppendChild(div)
//	fmt.Println(doc.Body().InnerHTML(), rec.Len())
package dom
