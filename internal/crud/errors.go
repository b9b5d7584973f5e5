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

import "errors"

var (
	// ErrSuperseded is returned to the caller of a list or detail fetch whose result was
	// discarded because a newer fetch was issued.
	ErrSuperseded = errors.New("request superseded by a newer request")
	// ErrSubmitInProgress is returned when a form is submitted while the operation is loading.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrNoTransition is returned when a form has no completion transition configured.
	ErrNoTransition = errors.New("form has no completion transition")
	// ErrUnknownField is returned when setting a field the form does not define.
	ErrUnknownField = errors.New("unknown form field")
	// ErrImmutableField is returned when setting a field that cannot be edited.
	ErrImmutableField = errors.New("field cannot be edited")
	// ErrUpdateNotSupported is returned when editing an entity that has no update contract.
	ErrUpdateNotSupported = errors.New("entity does not support updates")
	// ErrActionNotPermitted is returned when the current role cannot perform an action.
	ErrActionNotPermitted = errors.New("action not permitted for the current role")
	// ErrNoDeleteTarget is returned when confirming a delete with no open confirmation.
	ErrNoDeleteTarget = errors.New("no delete confirmation is open")
	// ErrNotMounted is returned when a list controller is used before Mount or after Close.
	ErrNotMounted = errors.New("list controller is not mounted")
)
