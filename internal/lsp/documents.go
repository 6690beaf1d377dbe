package lsp

import "sync"

// document is an open palette buffer and its analysis, computed on first use
// after each edit.
type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open palette documents keyed by URI. Color, hover and
// diagnostic requests for the same version share a single analysis.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Open starts tracking a document, replacing any earlier content.
func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

// Update replaces the content of a document and drops its cached analysis.
// Updates for documents that were never opened are tracked as opens.
func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the analysis of the document's current content, or nil if
// the document is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	if doc.result == nil {
		doc.result = Analyze(doc.content)
	}
	return doc.result
}
