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

package rest

import (
	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema is the JSON schema every successful response body must satisfy.
const envelopeSchema = `{
  "type": "object",
  "required": ["success"],
  "properties": {
    "success":   {"type": "boolean"},
    "message":   {"type": ["string", "null"]},
    "messageEn": {"type": ["string", "null"]},
    "messageAr": {"type": ["string", "null"]},
    "errors":    {"type": ["array", "object", "null"]},
    "timestamp": {"type": ["string", "null"]}
  }
}`

var compiledEnvelopeSchema = mustCompileSchema(envelopeSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return compiled
}

// validateEnvelope returns the schema violations of the body, if any.
func validateEnvelope(body []byte) ([]string, error) {
	result, err := compiledEnvelopeSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}
