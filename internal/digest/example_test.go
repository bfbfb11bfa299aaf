package digest_test

import (
	"fmt"

	"shadigest/internal/digest"
)

func ExampleSum() {
	fmt.Println(digest.Sum([]byte("abc")))
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleState() {
	s := digest.New()
	_ = s.Update([]byte("a"))
	_ = s.Update([]byte("bc"))
	d, err := s.Finalize()
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Short())
	// Output: ba7816bf8f01cfea4141
}
