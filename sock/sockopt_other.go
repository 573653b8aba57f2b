// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin)

package sock

import "syscall"

func reuseControl(network, address string, c syscall.RawConn) error {
	return nil
}
