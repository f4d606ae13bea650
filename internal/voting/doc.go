// Package voting computes pairwise and positional statistics of a ranked-ballot profile.
//
// A [Profile] groups identical rankings: Rankings[i] is a strict order of all candidates (best first)
// and Counts[i] is how many voters submitted it. Candidates are the integers 0..NumCands-1.
//
// The margin of a over b is the number of voters ranking a above b minus the number ranking b above a.
// [Profile.MarginMatrix] produces the matrix shown next to the profile table.
//
// [PresetKeys] and [LookupPreset] give the built-in example profiles and [Generate] draws a random one.
package voting
