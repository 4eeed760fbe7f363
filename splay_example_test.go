// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package splay_test

import (
	"fmt"
	"strings"

	"github.com/ajwerner/splay"
)

func ExampleSet() {
	s := splay.Make(strings.Compare)
	s.Insert("foo")
	s.Insert("bar")

	snapshot := s.Clone()
	s.Insert("baz")

	fmt.Println(s.AppendTo(nil))
	fmt.Println(snapshot.AppendTo(nil))
	fmt.Println(s.Contains("baz"), snapshot.Contains("baz"))

	// Output:
	// [bar baz foo]
	// [bar foo]
	// true false
}
