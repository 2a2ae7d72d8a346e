package sketch_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSketch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sketch Suite")
}
