// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package yecutil provides the transparent address handling used by the Ycash
consensus parameters.

Ycash transparent addresses are base58check strings whose payload starts with
a two byte network identifier followed by a 20 byte RIPEMD160(SHA256) hash.
Each network has two identifier sets: the current Ycash one and the legacy
Zcash one that was in use before the chain forked.  Addresses that were
published under the legacy identifiers are converted with TranslateAddress,
which keeps the hash and address class and only swaps the identifier.

Locking scripts for decoded addresses are built with PayToAddrScript and can be
mapped back to an address with ExtractAddress.
*/
package yecutil
