package pairs

import "github.com/biostrand/fastp/fastqio"

// Correct rewrites disagreeing bases in the overlapping region of r1/r2
// (as located by Analyze, given as offset and overlapLen) toward
// whichever mate has the higher quality at that position. Both the
// base and its quality byte are copied onto the loser.
func Correct(r1, r2 *fastqio.Record, offset, overlapLen int) {
	len2 := len(r2.Seq)
	if offset >= 0 {
		for i := 0; i < overlapLen; i++ {
			i1 := offset + i
			j := len2 - 1 - i
			correctOne(r1, r2, i1, j)
		}
		return
	}
	k := -offset
	for i := 0; i < overlapLen; i++ {
		i1 := i
		j := len2 - 1 - (k + i)
		correctOne(r1, r2, i1, j)
	}
}

func correctOne(r1, r2 *fastqio.Record, i1, j int) {
	b1 := r1.Seq[i1]
	b2 := r2.Seq[j]
	rcB2 := complement(b2)
	if b1 == rcB2 {
		return
	}
	q1 := phred(r1.Qual[i1])
	q2 := phred(r2.Qual[j])
	if q1 >= q2 {
		r2.Seq[j] = complement(b1)
		r2.Qual[j] = r1.Qual[i1]
	} else {
		r1.Seq[i1] = rcB2
		r1.Qual[i1] = r2.Qual[j]
	}
}

func phred(q byte) int {
	if q < 33 {
		return 0
	}
	return int(q) - 33
}
