// Copyright (c) 2019 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package probe

import "net/http"

// Option is used to set probe server's options.
type Option func(*Server)

// WithReadinessHandler answers readiness and health requests with h once the server is ready.
func WithReadinessHandler(h http.Handler) Option {
	return func(s *Server) { s.readinessHandler = h }
}

// WithHandler mounts an extra endpoint, e.g. a status page of the served component.
func WithHandler(pattern string, h http.Handler) Option {
	return func(s *Server) { s.extra[pattern] = h }
}
