// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// lots of duplicates are all kept and counted
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// build the tree checking after every insert, then delete a prefix
// of the list followed by the remainder, checking after every delete
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.New[string]()
		for _, key := range addList {
			tree.Insert(key)
			if err := tree.Check(); nil != err {
				depth := tree.Print(os.Stdout)
				t.Logf("depth: %d", depth)
				t.Fatalf("add: %q  inconsistent tree: %s", key, err)
			}
		}

		for _, key := range addList[:i] {
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if dv != key {
				t.Fatalf("delete returned: %q  expected: %q", dv, key)
			}
		}

		if err := tree.Check(); nil != err {
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}
		if len(addList)-i != tree.Count() {
			t.Fatalf("count after delete: %d  expected: %d", tree.Count(), len(addList)-i)
		}

		for _, key := range addList[i:] {
			if _, err := tree.Delete(key); nil != err {
				t.Fatalf("delete remainder: %q  error: %s", key, err)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	tree := avl.New[string]()
	for _, key := range addList {
		tree.Insert(key)
	}

	expected := make([]string, len(addList))
	copy(expected, addList)
	sort.Strings(expected)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Value() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Value(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Value() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Value(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}

	if !tree.IsEmpty() {
		depth := tree.Print(os.Stdout)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []string) {

	tree := avl.New[string]()
	for _, key := range addList {
		tree.Insert(key)
	}

	expected := make([]string, len(addList))
	copy(expected, addList)
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node, err := tree.Get(index)
		if nil != err {
			t.Fatalf("[%d] key: %q get error: %s", index, key, err)
		}
		if node.Value() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Value())
		}
		node1, index1 := tree.Search(key)
		if nil == node1 {
			t.Fatalf("[%d]: search: %q returned nil", index, key)
		}
		if node1.Value() != key {
			t.Errorf("[%d]: search: %q found: %q", index, key, node1.Value())
		}
		if first := sort.SearchStrings(expected, key); index1 < first || index1 >= first+countOf(expected, key) {
			t.Errorf("[%d]: search: %q index: %d outside duplicate run from: %d", index, key, index1, first)
		}
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("tree check failed: %s", err)
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Delete(key)
		}
	}

	remaining := make([]string, 0, len(expected)/2)
	for index, key := range expected {
		if 1 == index%2 {
			remaining = append(remaining, key)
		}
	}

	// check odd elements are all present
	for index, key := range remaining {
		node, err := tree.Get(index)
		if nil != err {
			t.Fatalf("[%d] key: %q get error: %s", index, key, err)
		}
		if node.Value() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Value())
		}
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("tree check failed: %s", err)
	}
}

func countOf(list []string, key string) int {
	n := 0
	for _, k := range list {
		if k == key {
			n += 1
		}
	}
	return n
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		if _, err := tree.Delete(key); nil != err {
			t.Fatalf("delete: %q  error: %s", key, err)
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("inconsistent tree: %s", err)
		}
	}
	if total-toDelete != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), total-toDelete)
	}

	// add back the test value, five digit keys cannot clash
	const testKey = "50000"
	tree.Insert(testKey)

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv, err := tree.Find(testKey)
	if nil != err {
		t.Fatalf("could not find test key: %q  error: %s", testKey, err)
	}
	if testKey != tv.Value() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Value(), testKey)
	}

	// check iterators
	if nil == tv.Prev() && 1 != tree.Count() {
		t.Fatal("could not find prev")
	}

	value, err := tree.Delete(testKey)
	if nil != err {
		t.Fatalf("delete test key error: %s", err)
	}
	if value != testKey {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testKey)
	}
	if _, err := tree.Find(testKey); nil == err {
		t.Fatalf("test key not deleted")
	}
}

// nodes keep constant address when tree is re-balanced
func TestNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string]()
	for _, key := range addList[:5] {
		tree.Insert(key)
	}

	node1, index1 := tree.Search("05")
	if 4 != index1 {
		t.Errorf("index1: %d  expected 4", index1)
	}

	// these inserts rotate the node holding "05"
	for _, key := range addList[5:] {
		tree.Insert(key)
	}

	node2, index2 := tree.Search("05")
	if 4 != index2 {
		t.Errorf("index2: %d  expected 4", index2)
	}
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}

	// delete a node so the "05" node moves
	tree.Delete("06")
	tree.Delete("04")

	node3, _ := tree.Search("05")
	if node1 != node3 {
		t.Fatalf("node moved from: %p → %p", node1, node3)
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New[string]()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07"} {
		tree.Insert(key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.Root().Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
}
