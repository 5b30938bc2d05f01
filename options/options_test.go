package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDefaultsToTwiceThreadCount(t *testing.T) {
	o := Default()
	o.Thread = 4
	assert.Equal(t, 8, o.Queue())
}

func TestQueueHonorsExplicitDepth(t *testing.T) {
	o := Default()
	o.Thread = 4
	o.QueueDepth = 16
	assert.Equal(t, 16, o.Queue())
}

func TestUsePoolGatesOnGzipSuffixAndPigz(t *testing.T) {
	o := Default()
	o.Out1 = "reads.fastq"
	assert.False(t, o.UsePool(), "expected no pool: plain output")

	o.Out1 = "reads.fastq.gz"
	assert.True(t, o.UsePool(), "expected pool: gzip output, pigz off")

	o.Pigz = true
	assert.False(t, o.UsePool(), "expected no pool: pigz handles compression instead")
}
