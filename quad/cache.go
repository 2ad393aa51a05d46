/*
 * cache.go, part of stogto.
 *
 * Copyright 2025 The stogto Authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package quad

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/qcovlp/stogto"
)

//CacheSize is the number of different quadrature orders kept in memory.
const CacheSize = 32

var rules *lru.Cache[int, *Rule]

func init() {
	var err error
	rules, err = lru.New[int, *Rule](CacheSize)
	if err != nil {
		panic("quad: can't create the rule cache: " + err.Error()) //only fails for a non-positive size
	}
}

//Laguerre returns the n-point Gauss-Laguerre rule, building it only the first
//time a given order is requested. It is safe for concurrent use. The returned
//rule is shared and must not be modified.
func Laguerre(n int) (*Rule, error) {
	if R, ok := rules.Get(n); ok {
		return R, nil
	}
	R, err := NewLaguerre(n)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "quad.Laguerre")
	}
	rules.Add(n, R)
	return R, nil
}

//Purge empties the rule cache.
func Purge() {
	rules.Purge()
}
