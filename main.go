package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"

	"doublekey/config"
	"doublekey/datastruct/dict"
	"doublekey/logger"
)

var banner = `
    ____              __    __     __ __
   / __ \____  __  __/ /_  / /__  / //_/__  __  __
  / / / / __ \/ / / / __ \/ / _ \/ ,< / _ \/ / / /
 / /_/ / /_/ / /_/ / /_/ / /  __/ /| /  __/ /_/ /
/_____/\____/\__,_/_.___/_/\___/_/ |_\___/\__, /
                                         /____/
`

const configFile = "doublekey.yaml"

// TestType 演示用的左key：guid和字符串共同决定相等
type TestType struct {
	TestGuid   uuid.UUID `json:"guid"`
	TestString string    `json:"name"`
}

// testTypeHasher 组合guid和字符串的哈希
type testTypeHasher struct {
	strings dict.StringHasher
}

func (h testTypeHasher) Hash(key TestType) int {
	guid := h.strings.Hash(string(key.TestGuid[:]))
	return (guid * 397) ^ h.strings.Hash(key.TestString)
}

func (h testTypeHasher) Equal(a, b TestType) bool {
	return a.TestGuid == b.TestGuid && a.TestString == b.TestString
}

var (
	testKey1 = TestType{TestGuid: uuid.MustParse("3D5C91E2-6163-4396-8339-B503294C0B07"), TestString: "Test1"}
	testKey2 = TestType{TestGuid: uuid.MustParse("B19394AF-1A2C-4718-963D-09491E2CC275"), TestString: "Test2"}
	testKey3 = TestType{TestGuid: uuid.MustParse("A59EB319-B8A1-4FCF-BDB6-39C14E9BCD21"), TestString: "Test3"}
)

type report struct {
	Concurrent bool             `json:"concurrent"`
	Len        int              `json:"len"`
	Size       int              `json:"size"`
	ByLeftKey  map[string][]int `json:"byLeftKey"`
	ByRightKey map[string][]int `json:"byRightKey"`
}

func newDict(conf *config.DictConfig) (dict.DoubleKeyDict[TestType, int, int], error) {
	inner, err := dict.NewSimpleDoubleKeyDict[TestType, int, int](conf.Capacity, testTypeHasher{}, nil)
	if err != nil {
		return nil, err
	}
	if conf.Concurrent {
		return dict.NewConcurrentDoubleKeyDict(inner), nil
	}
	return inner, nil
}

// run 插入演示数据，把按左右key枚举的结果以json写到w
func run(w io.Writer, conf *config.DictConfig) error {
	d, err := newDict(conf)
	if err != nil {
		return err
	}
	inserts := []struct {
		left  TestType
		right int
		val   int
	}{
		{testKey1, 1, 1},
		{testKey2, 1, 2},
		{testKey3, 1, 3},
		{testKey1, 2, 4},
		{testKey1, 3, 5},
		{testKey2, 2, 7},
		{testKey2, 3, 8},
		{testKey3, 2, 10},
		{testKey3, 3, 11},
	}
	for _, in := range inserts {
		if err := d.Add(in.left, in.right, in.val); err != nil {
			return err
		}
	}

	rep := &report{
		Concurrent: conf.Concurrent,
		Len:        d.Len(),
		Size:       d.Size(),
		ByLeftKey:  make(map[string][]int),
		ByRightKey: make(map[string][]int),
	}
	for _, key := range []TestType{testKey1, testKey2, testKey3} {
		rep.ByLeftKey[key.TestString] = d.GetValuesByLeftKey(key)
	}
	for right := 1; right <= 3; right++ {
		rep.ByRightKey[strconv.Itoa(right)] = d.GetValuesByRightKey(right)
	}
	logger.Infof("dict holds %d values in a %dx%d matrix", rep.Len, rep.Size, rep.Size)

	bytes, err := sonnet.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

func fileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}

func main() {
	print(banner)
	if fileExists(configFile) {
		if err := config.SetupConfig(configFile); err != nil {
			logger.Fatal(err)
		}
	}
	logger.Setup(&config.Config.Log)
	defer logger.DefaultLogger.Close()

	if err := run(os.Stdout, config.Config); err != nil {
		logger.Error(err)
	}
}
