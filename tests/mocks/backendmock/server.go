/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package backendmock provides an in-process fake of the roster backend for tests.
package backendmock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// APIPrefix is the path prefix served by the fake backend.
const APIPrefix = "/api"

// Record is one stored entity as a JSON object.
type Record map[string]interface{}

// RecordedRequest is a request received by the fake backend.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   Record
}

type failure struct {
	method     string
	collection string
	status     int
	message    string
}

type collection struct {
	nextID int64
	items  []Record
}

// Server serves in-memory collections over the backend response envelope.
type Server struct {
	server *httptest.Server

	mu          sync.Mutex
	collections map[string]*collection
	failures    []failure
	delay       func(r *http.Request) time.Duration
	requests    []RecordedRequest
}

// NewServer starts a fake backend. Callers must Close it.
func NewServer() *Server {
	s := &Server{collections: map[string]*collection{}}

	router := mux.NewRouter()
	api := router.PathPrefix(APIPrefix).Subrouter()
	api.Use(s.intercept)
	api.HandleFunc("/{collection}", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/{collection}", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/{collection}/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{collection}/{id}", s.handleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/{collection}/{id}", s.handleDelete).Methods(http.MethodDelete)

	s.server = httptest.NewServer(router)
	return s
}

// URL returns the base URL of the fake backend, without the API prefix.
func (s *Server) URL() string {
	return s.server.URL
}

// Close stops the fake backend.
func (s *Server) Close() {
	s.server.Close()
}

// Seed stores records in a collection, assigning ids to records without one.
func (s *Server) Seed(name string, records ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collectionLocked(name)
	for _, r := range records {
		rec := copyRecord(r)
		if _, ok := rec["id"]; !ok {
			c.nextID++
			rec["id"] = c.nextID
		} else if n, err := strconv.ParseInt(idOf(rec), 10, 64); err == nil && n > c.nextID {
			c.nextID = n
		}
		c.items = append(c.items, rec)
	}
}

// Items returns a copy of the records of a collection.
func (s *Server) Items(name string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collectionLocked(name)
	out := make([]Record, 0, len(c.items))
	for _, r := range c.items {
		out = append(out, copyRecord(r))
	}
	return out
}

// Fail makes the next request with the method on the collection fail with the status.
func (s *Server) Fail(method, name string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, collection: name, status: status, message: message})
}

// SetDelay sets a hook returning the latency applied to each request before it is served.
func (s *Server) SetDelay(delay func(r *http.Request) time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = delay
}

// Requests returns the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to read request body")
			return
		}
		var decoded Record
		if len(body) > 0 {
			if err := json.Unmarshal(body, &decoded); err != nil {
				writeError(w, http.StatusBadRequest, "Request body is not a JSON object")
				return
			}
		}
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		name := mux.Vars(r)["collection"]

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: decoded,
		})
		delay := s.delay
		injected, failed := s.takeFailureLocked(r.Method, name)
		s.mu.Unlock()

		if delay != nil {
			if d := delay(r); d > 0 {
				select {
				case <-time.After(d):
				case <-r.Context().Done():
					return
				}
			}
		}
		if failed {
			writeError(w, injected.status, injected.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) takeFailureLocked(method, name string) (failure, bool) {
	for i, f := range s.failures {
		if f.method == method && f.collection == name {
			s.failures = append(s.failures[:i], s.failures[i+1:]...)
			return f, true
		}
	}
	return failure{}, false
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := positive(query.Get("page"), 1)
	pageSize := positive(query.Get("pageSize"), 10)

	s.mu.Lock()
	items := filterRecords(s.collectionLocked(mux.Vars(r)["collection"]).items, query)
	s.mu.Unlock()
	sortRecords(items, query)

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"items":       items[from:to],
			"totalCount":  total,
			"page":        page,
			"pageSize":    pageSize,
			"totalPages":  totalPages,
			"hasNext":     page < totalPages,
			"hasPrevious": page > 1,
		},
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.mu.Lock()
	rec, _, ok := s.findLocked(vars["collection"], vars["id"])
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": rec})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, ok := body["isActive"]; !ok {
		body["isActive"] = true
	}
	body["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	c := s.collectionLocked(mux.Vars(r)["collection"])
	c.nextID++
	body["id"] = c.nextID
	c.items = append(c.items, copyRecord(body))
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "data": body})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var body Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	rec, _, ok := s.findLocked(vars["collection"], vars["id"])
	if ok {
		for k, v := range body {
			if k != "id" && k != "updateReason" {
				rec[k] = v
			}
		}
		rec["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
		rec = copyRecord(rec)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": rec})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reason := r.URL.Query().Get("reason")
	if reason == "" {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			reason = body["reason"]
		}
	}
	if strings.TrimSpace(reason) == "" {
		writeError(w, http.StatusBadRequest, "A reason is required")
		return
	}

	s.mu.Lock()
	_, index, ok := s.findLocked(vars["collection"], vars["id"])
	if ok {
		c := s.collections[vars["collection"]]
		c.items = append(c.items[:index], c.items[index+1:]...)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"data":      true,
		"messageEn": "Record deleted",
		"messageAr": "تم حذف السجل",
	})
}

func (s *Server) collectionLocked(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{}
		s.collections[name] = c
	}
	return c
}

func (s *Server) findLocked(name, id string) (Record, int, bool) {
	for i, rec := range s.collectionLocked(name).items {
		if idOf(rec) == id {
			return rec, i, true
		}
	}
	return nil, -1, false
}

func filterRecords(items []Record, query url.Values) []Record {
	search := strings.ToLower(strings.TrimSpace(query.Get("search")))
	out := make([]Record, 0, len(items))
	for _, rec := range items {
		if search != "" && !matches(rec, search) {
			continue
		}
		if v := query.Get("isActive"); v != "" && fmt.Sprint(rec["isActive"]) != v {
			continue
		}
		if v := query.Get("departmentId"); v != "" && fmt.Sprint(rec["departmentId"]) != v {
			continue
		}
		if v := query.Get("categoryId"); v != "" && fmt.Sprint(rec["categoryId"]) != v {
			continue
		}
		out = append(out, copyRecord(rec))
	}
	return out
}

func sortRecords(items []Record, query url.Values) {
	field, desc := query.Get("orderBy"), query.Get("orderDesc") == "true"
	if field == "" {
		field, desc = query.Get("sortBy"), query.Get("sortDirection") == "desc"
	}
	if field == "" {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := fmt.Sprint(items[i][field]), fmt.Sprint(items[j][field])
		if desc {
			return a > b
		}
		return a < b
	})
}

func matches(rec Record, search string) bool {
	for _, v := range rec {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func idOf(rec Record) string {
	return fmt.Sprint(rec["id"])
}

func copyRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func positive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success":   false,
		"message":   message,
		"messageEn": message,
		"status":    status,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
