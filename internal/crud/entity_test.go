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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/rosteradmin/internal/system/i18n"
)

func TestIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "Number", input: `42`, want: "42"},
		{name: "String", input: `"a-7"`, want: "a-7"},
		{name: "Null", input: `null`, want: ""},
		{name: "Object", input: `{}`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tc.input), &id)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestIDMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}{A: "12", B: "x1", C: "007"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":"x1","c":"007"}`, string(out))
}

func TestIDInt(t *testing.T) {
	n, ok := ID("15").Int()
	assert.True(t, ok)
	assert.Equal(t, int64(15), n)

	_, ok = ID("0").Int()
	assert.False(t, ok)
	_, ok = ID("abc").Int()
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("  9 ")
	require.NoError(t, err)
	assert.Equal(t, ID("9"), id)

	_, err = ParseID("   ")
	assert.Error(t, err)
}

func TestBilingualNameFallsBackToOtherLanguage(t *testing.T) {
	name := BilingualName{NameEnglish: "Cardiology"}

	assert.Equal(t, "Cardiology", name.Name(i18n.English))
	assert.Equal(t, "Cardiology", name.Name(i18n.Arabic))

	name.NameArabic = "القلب"
	assert.Equal(t, "القلب", name.Name(i18n.Arabic))
}

func TestEntityDecodesAudit(t *testing.T) {
	var w struct {
		widget
		Audit
	}
	err := json.Unmarshal([]byte(`{"id":3,"nameEnglish":"A","createdAt":"2025-01-02T03:04:05Z",
		"createdByName":"admin","updatedAt":null}`), &w)

	require.NoError(t, err)
	assert.Equal(t, ID("3"), w.ID)
	assert.Equal(t, "admin", w.CreatedByName)
	assert.Equal(t, 2025, w.CreatedAt.Time.Year())
	assert.True(t, w.UpdatedAt.Time.IsZero())
}
