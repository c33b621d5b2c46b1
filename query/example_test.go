package query_test

import (
	"errors"
	"fmt"

	"linq/query"
)

func ExampleSelect() {
	squares := query.Select(query.Range(1, 10), func(x int) int { return x * x })
	fmt.Println(squares.ToArray())

	// Output:
	// [1 4 9 16 25 36 49 64 81 100]
}

func ExampleOrderByDescending() {
	scores := query.New(59, 82, 70, 56, 92, 98, 85)

	rest := query.OrderByDescending(scores, func(s int) int { return s }).Skip(3)
	fmt.Println(rest.ToArray())

	// Output:
	// [82 70 59 56]
}

func ExampleThenBy() {
	type pet struct {
		Name string
		Age  int
	}
	pets := query.New(pet{"rex", 3}, pet{"ada", 5}, pet{"bo", 3})

	sorted := query.ThenBy(
		query.OrderBy(pets, func(p pet) int { return p.Age }),
		func(p pet) string { return p.Name },
	)
	sorted.ForEach(func(p pet) {
		fmt.Println(p.Age, p.Name)
	})

	// Output:
	// 3 bo
	// 3 rex
	// 5 ada
}

func ExampleQuery_Single() {
	q := query.New(1, 2, 3, 4, 5, 5)

	v, err := q.Single(func(x int) bool { return x == 1 })
	fmt.Println(v, err)

	_, err = q.Single(func(x int) bool { return x == 5 })
	fmt.Println(errors.Is(err, query.ErrNotExactlyOne))

	// Output:
	// 1 <nil>
	// true
}

func ExampleQuery_FirstOrDefault() {
	q := query.Empty[int]()

	_, err := q.First()
	fmt.Println(err)

	v, ok := q.FirstOrDefault()
	fmt.Println(v, ok)

	// Output:
	// sequence contains no matching element
	// 0 false
}

func ExampleZip() {
	nums := query.New(1, 2, 3, 4)
	words := query.New("one", "two", "three")

	zipped := query.Zip(nums, words, func(n int, w string) string {
		return fmt.Sprintf("%d %s", n, w)
	})
	fmt.Printf("%q\n", zipped.ToArray())

	// Output:
	// ["1 one" "2 two" "3 three"]
}

func ExampleGroupBy() {
	words := query.New("apple", "avocado", "banana", "blueberry", "cherry")

	byInitial := query.GroupBy(words, func(w string) byte { return w[0] })
	for k, items := range byInitial.All() {
		fmt.Printf("%c %v\n", k, items.ToArray())
	}

	// Output:
	// a [apple avocado]
	// b [banana blueberry]
	// c [cherry]
}
