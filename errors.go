// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged

import "errors"

// Wrong-state access errors.
// Value and Err panic with these values; TryValue and TryErr return them.
var (
	ErrBadValueAccess = errors.New("tagged: value accessed on error-active union")
	ErrBadErrorAccess = errors.New("tagged: error accessed on value-active union")
)

// ErrEmpty is the panic value of MustGet on an empty Maybe.
var ErrEmpty = errors.New("tagged: empty maybe")
