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
	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

// Operation identifies a store operation.
type Operation string

const (
	// OpList fetches a page of the collection.
	OpList Operation = "list"
	// OpDetail fetches a single entity.
	OpDetail Operation = "detail"
	// OpCreate creates an entity.
	OpCreate Operation = "create"
	// OpUpdate updates an entity.
	OpUpdate Operation = "update"
	// OpDelete deletes an entity.
	OpDelete Operation = "delete"
)

// Operations lists every operation in a stable order.
var Operations = []Operation{OpList, OpDetail, OpCreate, OpUpdate, OpDelete}

// OperationStatus is the loading, error and success state of one operation.
// Starting an operation clears the previous terminal state.
type OperationStatus struct {
	Loading bool
	Success bool
	Message i18n.Text
	Error   *serviceerror.ErrorInfo
}

// Idle reports whether the operation has no pending or terminal state.
func (s OperationStatus) Idle() bool {
	return !s.Loading && !s.Success && s.Error == nil && s.Message.IsZero()
}

func pending() OperationStatus {
	return OperationStatus{Loading: true}
}

func succeeded(message i18n.Text) OperationStatus {
	return OperationStatus{Success: true, Message: message}
}

func failed(info *serviceerror.ErrorInfo) OperationStatus {
	return OperationStatus{Error: info}
}
