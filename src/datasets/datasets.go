// Package datasets holds the in-degree histograms produced by the gossip overlay
// simulations. Every dataset covers the same 10000-node network; index i of a dataset is
// the in-degree value and the element is the number of nodes observed with that in-degree.
package datasets

import (
	"fmt"

	"github.com/pkg/errors"
)

// Method names how the overlay that produced a dataset was built.
type Method string

const (
	Shuffle Method = "Shuffle"
	Random  Method = "Random"
)

// NetworkSize is the number of nodes every dataset was sampled from.
const NetworkSize = 10000

// Dataset is one in-degree histogram. Counts is never shared with the package-level
// literals, so callers may modify it freely.
type Dataset struct {
	Method Method
	K      int
	Counts []int
}

// Label is the legend text for the dataset, e.g. "Shuffle = 30".
func (d Dataset) Label() string {
	return fmt.Sprintf("%s = %d", d.Method, d.K)
}

// Name identifies the dataset, e.g. "ShuffleK30".
func (d Dataset) Name() string {
	return fmt.Sprintf("%sK%d", d.Method, d.K)
}

// Validate checks the histogram is non-empty and holds no negative counts.
func (d Dataset) Validate() error {
	if len(d.Counts) == 0 {
		return errors.Errorf("dataset %s: no in-degree buckets", d.Name())
	}
	for i, c := range d.Counts {
		if c < 0 {
			return errors.Errorf("dataset %s: negative count %d at in-degree %d", d.Name(), c, i)
		}
	}
	return nil
}

// All returns the four datasets in legend order: ShuffleK30, RandomK30, ShuffleK50, RandomK50.
func All() []Dataset {
	return []Dataset{ShuffleK30(), RandomK30(), ShuffleK50(), RandomK50()}
}

// Labels returns the legend labels matching ds by position.
func Labels(ds []Dataset) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Label()
	}
	return out
}

func ShuffleK30() Dataset { return newDataset(Shuffle, 30, shuffleK30) }
func RandomK30() Dataset  { return newDataset(Random, 30, randomK30) }
func ShuffleK50() Dataset { return newDataset(Shuffle, 50, shuffleK50) }
func RandomK50() Dataset  { return newDataset(Random, 50, randomK50) }

func newDataset(m Method, k int, counts []int) Dataset {
	return Dataset{Method: m, K: k, Counts: append([]int(nil), counts...)}
}

var shuffleK30 = []int{
	0, 0, 0, 0, 0, 0, 2, 1, 4, 9, 32, 24, 42, 76, 112, 116, 178, 191, 251, 292, 367, 390, 384, 450,
	472, 471, 454, 482, 444, 423, 393, 372, 378, 320, 302, 266, 245, 228, 192, 165, 166, 133, 114, 119, 107, 103, 66, 79,
	60, 41, 45, 42, 21, 29, 25, 23, 20, 22, 21, 17, 13, 16, 8, 9, 13, 11, 7, 15, 6, 6, 6, 4,
	7, 9, 7, 8, 1, 3, 6, 4, 3, 3, 0, 8, 1, 3, 2, 0, 2, 1, 1, 1, 3, 0, 1, 0,
	0, 0, 2, 0, 0, 3, 1, 2, 0, 1, 1, 2, 2, 0, 1, 2, 0, 2, 2, 2, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
}

var randomK30 = []int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 8, 9, 24, 31, 50, 80, 123, 212, 269, 311,
	405, 490, 574, 655, 747, 766, 716, 708, 688, 602, 561, 426, 372, 321, 247, 175, 128, 100, 76, 44, 30, 16, 14, 6,
	2, 7, 0, 1, 2, 0, 0, 0, 0, 1,
}

var shuffleK50 = []int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 12, 11, 12, 25, 20, 24, 49, 69, 79, 105, 120, 155, 173, 224, 246, 239, 318, 329, 368, 338, 452, 397, 426,
	444, 418, 434, 403, 378, 367, 351, 324, 308, 323, 276, 272, 234, 170, 167, 125, 136, 108, 97, 79, 77, 46, 44, 45,
	34, 25, 26, 18, 4, 9, 10, 5, 8, 5, 9, 6, 3, 2, 3, 1, 3, 2, 2, 2, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1,
}

var randomK50 = []int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 2, 1, 3, 1, 9, 9, 13, 30, 35, 63, 78, 121, 134, 176, 209, 260, 315, 372, 412, 444, 524, 509,
	540, 546, 569, 527, 523, 494, 464, 443, 353, 338, 279, 246, 232, 177, 126, 99, 96, 52, 53, 33, 31, 18, 12, 11,
	7, 2, 2, 2, 2, 0, 1, 2,
}
