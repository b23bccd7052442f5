package piece

import "testing"

func TestOfGetRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for t_ := Pawn; t_ <= King; t_++ {
			idx := Of(t_, c)
			gotType, gotColor := Get(idx)
			if gotType != t_ || gotColor != c {
				t.Fatalf("Of(%v, %v) -> Get: expected (%v, %v) got (%v, %v)", t_, c, t_, c, gotType, gotColor)
			}
		}
	}
}

func TestWhiteBlackIndexLayout(t *testing.T) {
	if WPawn != 0 || WKing != 5 {
		t.Fatalf("expected White pieces to occupy indices 0..5, got WPawn=%d WKing=%d", WPawn, WKing)
	}
	if BPawn != 6 || BKing != 11 {
		t.Fatalf("expected Black pieces to occupy indices 6..11, got BPawn=%d BKing=%d", BPawn, BKing)
	}
}

func TestPlayerBase(t *testing.T) {
	if PlayerBase(White) != 0 {
		t.Fatalf("expected PlayerBase(White) == 0, got %d", PlayerBase(White))
	}
	if PlayerBase(Black) != 6 {
		t.Fatalf("expected PlayerBase(Black) == 6, got %d", PlayerBase(Black))
	}
}

func TestOfRejectsNoType(t *testing.T) {
	if got := Of(NoType, White); got != None {
		t.Fatalf("expected Of(NoType, _) == None, got %v", got)
	}
}

func TestGetOutOfRange(t *testing.T) {
	typ, color := Get(None)
	if typ != NoType || color != White {
		t.Fatalf("expected Get(None) == (NoType, White), got (%v, %v)", typ, color)
	}
}

func TestCharFromCharRoundTrip(t *testing.T) {
	for i := WPawn; i <= BKing; i++ {
		ch := Char(i)
		got, ok := FromChar(ch)
		if !ok || got != i {
			t.Fatalf("Char(%v)=%q, FromChar round trip gave (%v, %v)", i, ch, got, ok)
		}
	}
}

func TestCharInvalid(t *testing.T) {
	if got := Char(None); got != '.' {
		t.Fatalf("expected Char(None) == '.', got %q", got)
	}
	if _, ok := FromChar('z'); ok {
		t.Fatalf("expected FromChar('z') to fail")
	}
}

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Fatalf("expected White.Opposite() == Black")
	}
	if Black.Opposite() != White {
		t.Fatalf("expected Black.Opposite() == White")
	}
}

func TestIndexColorType(t *testing.T) {
	if WKnight.Color() != White || WKnight.Type() != Knight {
		t.Fatalf("expected WKnight to be (Knight, White), got (%v, %v)", WKnight.Type(), WKnight.Color())
	}
	if BQueen.Color() != Black || BQueen.Type() != Queen {
		t.Fatalf("expected BQueen to be (Queen, Black), got (%v, %v)", BQueen.Type(), BQueen.Color())
	}
}
