// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package process

import (
	"log/slog"
	"os/user"
	"strconv"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
)

// Placeholder replaces the user and command of an entry that could not be
// resolved when the resolver is lenient.
const Placeholder = "?"

// UserLookup maps a numeric uid to a user name.
type UserLookup func(uid uint32) (string, error)

// LookupUser resolves uid through the system user database.
func LookupUser(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Owner is the resolved owner and command of a GPU process.
type Owner struct {
	User    string
	Name    string
	Cmdline []string
}

// Source provides process table entries.
type Source interface {
	Lookup(pid int32) (Info, bool)
}

// Resolver attributes pids to users and commands using one snapshot.
type Resolver struct {
	source  Source
	lookup  UserLookup
	lenient bool
	users   map[uint32]string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithUserLookup overrides the user database lookup.
func WithUserLookup(lookup UserLookup) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// WithLenient makes unresolvable pids and uids yield Placeholder instead of
// an error.
func WithLenient(lenient bool) Option {
	return func(r *Resolver) {
		r.lenient = lenient
	}
}

// NewResolver returns a Resolver over source.
func NewResolver(source Source, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		lookup: LookupUser,
		users:  make(map[uint32]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the owner of pid. A pid missing from the snapshot (the
// process exited between the GPU query and the snapshot, or started after it)
// and a uid without a user database entry are errors unless the resolver is
// lenient.
func (r *Resolver) Resolve(pid uint32) (*Owner, error) {
	info, ok := r.source.Lookup(int32(pid))
	if !ok {
		if r.lenient {
			slog.Warn("gpu process not found in process table", slog.Uint64("pid", uint64(pid)))
			return &Owner{User: Placeholder, Name: Placeholder}, nil
		}
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"gpu process not found in process table",
			map[string]any{"pid": pid})
	}

	name, err := r.userName(info.UID)
	if err != nil {
		if !r.lenient {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				"failed to resolve process owner", err,
				map[string]any{"pid": pid, "uid": info.UID})
		}
		slog.Warn("process owner not found", slog.Uint64("pid", uint64(pid)), slog.Uint64("uid", uint64(info.UID)))
		name = Placeholder
	}

	return &Owner{
		User:    name,
		Name:    info.Name,
		Cmdline: info.Cmdline,
	}, nil
}

func (r *Resolver) userName(uid uint32) (string, error) {
	if name, ok := r.users[uid]; ok {
		return name, nil
	}
	name, err := r.lookup(uid)
	if err != nil {
		return "", err
	}
	r.users[uid] = name
	return name, nil
}
