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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"RFC3339", `"2025-03-01T10:00:00Z"`, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"Offset", `"2025-03-01T13:00:00+03:00"`, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"NoZoneFraction", `"2025-03-01T10:00:00.5"`, time.Date(2025, 3, 1, 10, 0, 0, 500000000, time.UTC)},
		{"NoZone", `"2025-03-01T10:00:00"`, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"DateOnly", `"2025-03-01"`, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Null", `null`, time.Time{}},
		{"Empty", `""`, time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.True(t, tc.expected.Equal(ts.Time), "got %v", ts.Time)
		})
	}

	ts := Timestamp{Time: time.Now()}
	require.NoError(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.True(t, ts.IsZero())

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal([]byte(`{"messageEn":"Code taken","timestamp":"01/03/2025 10:00"}`), &payload))
	assert.Equal(t, "Code taken", payload.MessageEn)
	assert.True(t, payload.Timestamp.IsZero())
}

func TestTimestampMarshal(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(Timestamp{Time: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01T10:00:00Z"`, string(data))
}

func TestErrorListUnmarshal(t *testing.T) {
	var list ErrorList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &list))
	assert.Equal(t, ErrorList{"a", "b"}, list)

	require.NoError(t, json.Unmarshal([]byte(`{"Name":["required"],"Code":["too long","invalid"]}`), &list))
	assert.Equal(t, ErrorList{"Code: too long", "Code: invalid", "Name: required"}, list)

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)

	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}
