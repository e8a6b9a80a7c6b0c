package filter

import "strings"

// impossiblePairs are adjacent letter pairs that do not occur in the
// orthography of the supported languages. A string containing any of
// them is treated as machine noise. Matching is case-sensitive and
// only ever looks at two-character windows.
var impossiblePairs = map[string]bool{
	"bk": true, "fq": true, "jc": true, "jt": true, "mj": true, "qh": true, "qx": true, "vj": true, "wz": true, "zh": true,
	"bq": true, "fv": true, "jd": true, "jv": true, "mq": true, "qj": true, "qy": true, "vk": true, "xb": true, "zj": true,
	"bx": true, "fx": true, "jf": true, "jw": true, "mx": true, "qk": true, "qz": true, "vm": true, "xg": true, "zn": true,
	"cb": true, "fz": true, "jg": true, "jx": true, "mz": true, "ql": true, "sx": true, "vn": true, "xj": true, "zq": true,
	"cf": true, "gq": true, "jh": true, "jy": true, "pq": true, "qm": true, "sz": true, "vp": true, "xk": true, "zr": true,
	"cg": true, "gv": true, "jk": true, "jz": true, "pv": true, "qn": true, "tq": true, "vq": true, "xv": true, "zs": true,
	"cj": true, "gx": true, "jl": true, "kq": true, "px": true, "qo": true, "tx": true, "vt": true, "xz": true, "zx": true,
	"cp": true, "hk": true, "jm": true, "kv": true, "qb": true, "qp": true, "vb": true, "vw": true, "yq": true,
	"cv": true, "hv": true, "jn": true, "kx": true, "qc": true, "qr": true, "vc": true, "vx": true, "yv": true,
	"cw": true, "hx": true, "jp": true, "kz": true, "qd": true, "qs": true, "vd": true, "vz": true, "yz": true,
	"cx": true, "hz": true, "jq": true, "lq": true, "qe": true, "qt": true, "vf": true, "wq": true, "zb": true,
	"dx": true, "iy": true, "jr": true, "lx": true, "qf": true, "qv": true, "vg": true, "wv": true, "zc": true,
	"fk": true, "jb": true, "js": true, "mg": true, "qg": true, "qw": true, "vh": true, "wx": true, "zg": true,
}

// Ngram drops strings containing orthographically impossible letter
// pairs. Strings with a literal dot are exempt so that URLs, hostnames
// and file paths survive regardless of their letter pairs.
type Ngram struct{}

// NewNgram creates a letter-pair filter
func NewNgram() *Ngram {
	return &Ngram{}
}

// Keep reports whether s survives the filter
func (f *Ngram) Keep(s string) bool {
	if strings.ContainsRune(s, '.') {
		return true
	}
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		if impossiblePairs[string(runes[i:i+2])] {
			return false
		}
	}
	return true
}

// Partition splits in into survivors and rejects, preserving order.
// tick, when non-nil, is called once per examined string.
func (f *Ngram) Partition(in []string, tick func()) (kept, rejected []string) {
	for _, s := range in {
		if tick != nil {
			tick()
		}
		if f.Keep(s) {
			kept = append(kept, s)
		} else {
			rejected = append(rejected, s)
		}
	}
	return kept, rejected
}
