// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package worker

// setAffinity is a hint; platforms without thread affinity ignore it.
func setAffinity(int) error {
	return nil
}
