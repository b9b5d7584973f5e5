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

package crud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/rest"
)

// ReasonPlacement is where a delete endpoint expects the justification.
type ReasonPlacement int

const (
	// ReasonInQuery sends the reason as a query parameter.
	ReasonInQuery ReasonPlacement = iota
	// ReasonInBody sends the reason as a JSON body field.
	ReasonInBody
)

const defaultReasonParam = "reason"

// Endpoint describes the backend collection of an entity.
type Endpoint struct {
	// Path is relative to the API prefix, for example "Departments".
	Path       string
	QueryStyle QueryStyle
	// Query is sent with detail requests, for example includeManager=true.
	Query       url.Values
	ReasonIn    ReasonPlacement
	ReasonParam string
}

func (e Endpoint) reasonParam() string {
	if e.ReasonParam == "" {
		return defaultReasonParam
	}
	return e.ReasonParam
}

// ListResult is one page of entities.
type ListResult[T Entity] struct {
	Items      []T
	Pagination Pagination
}

// Mutation is the result of a create or update.
type Mutation[T Entity] struct {
	Entity  T
	Message i18n.Text
}

// Resource is the transport used by a Store.
type Resource[T Entity, P any] interface {
	List(ctx context.Context, filters FilterState) (ListResult[T], error)
	Get(ctx context.Context, id ID) (T, error)
	Create(ctx context.Context, payload P) (Mutation[T], error)
	Update(ctx context.Context, id ID, payload P) (Mutation[T], error)
	Delete(ctx context.Context, id ID, reason string) (i18n.Text, error)
}

// RESTResource implements Resource over the backend REST client.
type RESTResource[T Entity, P any] struct {
	client   rest.ClientInterface
	endpoint Endpoint
}

// NewRESTResource creates a RESTResource for the endpoint.
func NewRESTResource[T Entity, P any](client rest.ClientInterface, endpoint Endpoint) *RESTResource[T, P] {
	return &RESTResource[T, P]{client: client, endpoint: endpoint}
}

// List implements Resource. Pagination is recomputed from the response counts.
func (r *RESTResource[T, P]) List(ctx context.Context, filters FilterState) (ListResult[T], error) {
	filters = filters.Normalize()
	var envelope rest.Envelope[rest.ListData[T]]
	err := r.client.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Path:   r.endpoint.Path,
		Query:  filters.Values(r.endpoint.QueryStyle),
	}, &envelope)
	if err != nil {
		return ListResult[T]{}, err
	}
	data := envelope.Data
	page := data.Page
	if page < 1 {
		page = filters.Page
	}
	pageSize := data.PageSize
	if pageSize < 1 {
		pageSize = filters.PageSize
	}
	items := data.Items
	if items == nil {
		items = []T{}
	}
	return ListResult[T]{
		Items:      items,
		Pagination: NewPagination(data.TotalCount, page, pageSize),
	}, nil
}

// Get implements Resource.
func (r *RESTResource[T, P]) Get(ctx context.Context, id ID) (T, error) {
	var envelope rest.Envelope[T]
	err := r.client.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Path:   r.endpoint.Path + "/" + url.PathEscape(id.String()),
		Query:  r.endpoint.Query,
	}, &envelope)
	return envelope.Data, err
}

// Create implements Resource.
func (r *RESTResource[T, P]) Create(ctx context.Context, payload P) (Mutation[T], error) {
	return r.mutate(ctx, rest.Request{Method: http.MethodPost, Path: r.endpoint.Path, Body: payload})
}

// Update implements Resource.
func (r *RESTResource[T, P]) Update(ctx context.Context, id ID, payload P) (Mutation[T], error) {
	return r.mutate(ctx, rest.Request{
		Method: http.MethodPut,
		Path:   r.endpoint.Path + "/" + url.PathEscape(id.String()),
		Body:   payload,
	})
}

// Delete implements Resource.
func (r *RESTResource[T, P]) Delete(ctx context.Context, id ID, reason string) (i18n.Text, error) {
	req := rest.Request{
		Method: http.MethodDelete,
		Path:   r.endpoint.Path + "/" + url.PathEscape(id.String()),
	}
	if r.endpoint.ReasonIn == ReasonInBody {
		req.Body = map[string]string{r.endpoint.reasonParam(): reason}
	} else {
		req.Query = url.Values{r.endpoint.reasonParam(): []string{reason}}
	}
	var envelope rest.Envelope[json.RawMessage]
	if err := r.client.Do(ctx, req, &envelope); err != nil {
		return i18n.Text{}, err
	}
	return envelopeMessage(envelope.MessageEn, envelope.MessageAr, envelope.Message), nil
}

func (r *RESTResource[T, P]) mutate(ctx context.Context, req rest.Request) (Mutation[T], error) {
	var envelope rest.Envelope[T]
	if err := r.client.Do(ctx, req, &envelope); err != nil {
		return Mutation[T]{}, err
	}
	return Mutation[T]{
		Entity:  envelope.Data,
		Message: envelopeMessage(envelope.MessageEn, envelope.MessageAr, envelope.Message),
	}, nil
}

func envelopeMessage(en, ar, plain string) i18n.Text {
	if en == "" && ar == "" {
		return i18n.NewText(plain, plain)
	}
	return i18n.NewText(en, ar)
}
