package format

import "testing"

func TestClassifySize(t *testing.T) {
	cases := []struct {
		n    int
		want SizeClass
	}{
		{0, SizeTooSmall},
		{HalfSize - 1, SizeTooSmall},
		{HalfSize, SizeHalf},
		{HalfSize + 0x10, SizeHalf},
		{HalfSize + FooterLeeway, SizeHalf},
		{HalfSize + FooterLeeway + 1, SizeTooSmall},
		{FullSize - 1, SizeTooSmall},
		{FullSize, SizeFull},
		{FullSize + 0x20, SizeFull},
		{FullSize + FooterLeeway, SizeFull},
		{FullSize + FooterLeeway + 1, SizeTooBig},
		{4 * FullSize, SizeTooBig},
	}
	for _, tc := range cases {
		if got := ClassifySize(tc.n); got != tc.want {
			t.Errorf("ClassifySize(%#x) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestIsSizeWorthLookingAt(t *testing.T) {
	if !IsSizeWorthLookingAt(0) || !IsSizeWorthLookingAt(FullSize+FooterLeeway) {
		t.Fatalf("sizes up to full+leeway should be worth looking at")
	}
	if IsSizeWorthLookingAt(FullSize + FooterLeeway + 1) {
		t.Fatalf("size beyond full+leeway should be rejected")
	}
}
