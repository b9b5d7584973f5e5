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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/asgardeo/rosteradmin/internal/crud"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/utils"
)

const dateLayout = "2006-01-02"

var errUsage = errors.New("invalid usage")

// setFlags collects repeated -set field=value flags.
type setFlags crud.Values

func (s setFlags) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (s setFlags) Set(raw string) error {
	pairs, err := utils.ParseKeyValuePairs([]string{raw})
	if err != nil {
		return err
	}
	for name, value := range pairs {
		s[name] = value
	}
	return nil
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *app) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", errUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}

func positional(command string, args []string, names ...string) ([]string, []string, error) {
	if len(args) < len(names) {
		return nil, nil, fmt.Errorf("%w: %s requires %s", errUsage, command, strings.Join(names, " and "))
	}
	for _, arg := range args[:len(names)] {
		if strings.HasPrefix(arg, "-") {
			return nil, nil, fmt.Errorf("%w: %s requires %s", errUsage, command, strings.Join(names, " and "))
		}
	}
	return args[:len(names)], args[len(names):], nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	token := fs.String("token", "", "Bearer token")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if utils.IsBlank(*token) {
		return fmt.Errorf("%w: login requires -token", errUsage)
	}
	claims, err := a.services.session.Login(ctx, *token)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(a.stdout, "Signed in as %s (%s)\n", claims.Name, claims.Role)
	return nil
}

func (a *app) whoami() error {
	claims := a.services.session.Claims()
	if claims == nil {
		_, _ = fmt.Fprintln(a.stdout, "Not signed in")
		return nil
	}
	locale := i18n.CurrentLocale()
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", claims.Name)
	_, _ = fmt.Fprintf(w, "Email:\t%s\n", claims.Email)
	_, _ = fmt.Fprintf(w, "Role:\t%s\n", a.services.session.CurrentRole())
	if !claims.ExpiresAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Expires:\t%s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(w, "Locale:\t%s (%s)\n", locale, locale.Direction())
	return w.Flush()
}

func (a *app) list(ctx context.Context, args []string) error {
	pos, rest, err := positional("list", args, "entity")
	if err != nil {
		return err
	}
	entity, err := a.services.entity(pos[0])
	if err != nil {
		return err
	}

	var opts listOptions
	var active, department, category, from, to string
	fs := a.newFlagSet("list")
	fs.StringVar(&opts.Search, "search", "", "Free-text search")
	fs.IntVar(&opts.Page, "page", 0, "Page number")
	fs.IntVar(&opts.PageSize, "page-size", a.services.cfg.UI.PageSize, "Page size")
	fs.StringVar(&opts.OrderBy, "order-by", "", "Ordering field")
	fs.BoolVar(&opts.Desc, "desc", false, "Descending order")
	fs.StringVar(&active, "active", "", "Filter on the active flag, true or false")
	fs.StringVar(&department, "department", "", "Filter on a department id")
	fs.StringVar(&category, "category", "", "Filter on a category id")
	fs.StringVar(&from, "from", "", "Created on or after, YYYY-MM-DD")
	fs.StringVar(&to, "to", "", "Created on or before, YYYY-MM-DD")
	if err := a.parse(fs, rest); err != nil {
		return err
	}

	if active != "" {
		b, err := strconv.ParseBool(active)
		if err != nil {
			return fmt.Errorf("%w: -active must be true or false", errUsage)
		}
		opts.Active = &b
	}
	if opts.Department, err = optionalID("department", department); err != nil {
		return err
	}
	if opts.Category, err = optionalID("category", category); err != nil {
		return err
	}
	if opts.From, err = optionalDate("from", from); err != nil {
		return err
	}
	if opts.To, err = optionalDate("to", to); err != nil {
		return err
	}
	return entity.list(ctx, a.stdout, opts)
}

func (a *app) show(ctx context.Context, args []string) error {
	pos, rest, err := positional("show", args, "entity", "id")
	if err != nil {
		return err
	}
	if err := a.parse(a.newFlagSet("show"), rest); err != nil {
		return err
	}
	entity, err := a.services.entity(pos[0])
	if err != nil {
		return err
	}
	id, err := requiredID(pos[1])
	if err != nil {
		return err
	}
	return entity.show(ctx, a.stdout, id)
}

func (a *app) create(ctx context.Context, name string, args []string) error {
	command := "create"
	if name == "" {
		pos, rest, err := positional(command, args, "entity")
		if err != nil {
			return err
		}
		name, args = pos[0], rest
	}
	entity, err := a.services.entity(name)
	if err != nil {
		return err
	}
	values := setFlags{}
	fs := a.newFlagSet(command)
	fs.Var(values, "set", "Field value as field=value, repeatable")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	return entity.create(ctx, a.stdout, crud.Values(values))
}

func (a *app) update(ctx context.Context, args []string) error {
	pos, rest, err := positional("update", args, "entity", "id")
	if err != nil {
		return err
	}
	entity, err := a.services.entity(pos[0])
	if err != nil {
		return err
	}
	values := setFlags{}
	fs := a.newFlagSet("update")
	fs.Var(values, "set", "Field value as field=value, repeatable")
	if err := a.parse(fs, rest); err != nil {
		return err
	}
	id, err := requiredID(pos[1])
	if err != nil {
		return err
	}
	return entity.update(ctx, a.stdout, id, crud.Values(values))
}

func (a *app) remove(ctx context.Context, name string, args []string) error {
	var raw string
	if name == "" {
		pos, rest, err := positional("delete", args, "entity", "id")
		if err != nil {
			return err
		}
		name, raw, args = pos[0], pos[1], rest
	} else {
		pos, rest, err := positional("remove", args, "id")
		if err != nil {
			return err
		}
		raw, args = pos[0], rest
	}
	id, err := requiredID(raw)
	if err != nil {
		return err
	}
	entity, err := a.services.entity(name)
	if err != nil {
		return err
	}
	fs := a.newFlagSet("delete")
	reason := fs.String("reason", "", "Justification for the deletion")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	return entity.remove(ctx, a.stdout, id, *reason)
}

func requiredID(raw string) (crud.ID, error) {
	id, err := crud.ParseID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}
	return id, nil
}

func optionalID(name, raw string) (crud.ID, error) {
	if raw == "" {
		return "", nil
	}
	id, err := crud.ParseID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: -%s: %v", errUsage, name, err)
	}
	if _, ok := id.Int(); !ok {
		return "", fmt.Errorf("%w: -%s must be a positive id", errUsage, name)
	}
	return id, nil
}

func optionalDate(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: -%s must be a date in YYYY-MM-DD format", errUsage, name)
	}
	return &t, nil
}
