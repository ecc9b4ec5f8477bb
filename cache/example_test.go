package cache_test

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/urlsafe/cache"
)

func ExampleNewMemoryCache() {
	c := cache.NewMemoryCache(2)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a") // hits do not refresh position
	c.Set("c", "3")

	fmt.Println(c.Keys())
	// Output: [b c]
}

func ExampleMemoizer_Do() {
	m, err := cache.NewMemoizer(cache.NewMemoryCache(10), cache.DefaultPolicy())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, hit := m.Do("hello", strings.ToUpper)
	fmt.Println(v, hit)

	v, hit = m.Do("hello", strings.ToUpper)
	fmt.Println(v, hit)
	// Output:
	// HELLO false
	// HELLO true
}

func ExamplePolicy_Eligible() {
	p := cache.DefaultPolicy()

	fmt.Println(p.Eligible("/short"))
	fmt.Println(p.Eligible(strings.Repeat("x", 200)))
	// Output:
	// true
	// false
}
