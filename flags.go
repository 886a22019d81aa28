// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package shieldfpe

import (
	"sync/atomic"

	"github.com/shieldfpe/ff3/log"
)

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }
func (b *atomicBool) setFalse()   { atomic.StoreInt32((*int32)(b), 0) }

// -----------------------------------------------------------------------------

var fipsMode atomicBool

// InFIPSMode returns the FIPS compliance mode flag status. When enabled,
// ff3.NewCipher/NewCipherWithAlphabet reject 16-byte (AES-128) keys,
// since several FIPS-adjacent deployments restrict FF3-1 to AES-192/256.
func InFIPSMode() bool {
	return fipsMode.isSet()
}

// SetFIPSMode enables the FIPS compliance mode and returns a function to
// revert the configuration.
//
// Calling this method multiple times once the flag is enabled produces no effect.
func SetFIPSMode() (revert func()) {
	if fipsMode.isSet() {
		return func() {}
	}

	fipsMode.setTrue()
	log.Level(log.DebugLevel).Message("shieldfpe: FIPS mode enabled")

	return func() {
		fipsMode.setFalse()
		log.Level(log.DebugLevel).Message("shieldfpe: FIPS mode disabled")
	}
}
